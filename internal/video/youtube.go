package video

import "net/url"

// YouTube is the only supported external host, in its two URL shapes:
// youtube.com/watch?v=<id> and youtu.be/<id>.

func IsYouTubeURL(raw string) bool {
	return YouTubeVideoID(raw) != ""
}

// YouTubeVideoID extracts the video identifier from a YouTube URL, or
// returns "" when the URL matches neither accepted shape.
func YouTubeVideoID(raw string) string {
	parsed, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	host := parsed.Hostname()
	switch {
	case host == "youtube.com" || host == "www.youtube.com" || host == "m.youtube.com":
		return parsed.Query().Get("v")
	case host == "youtu.be":
		if len(parsed.Path) > 1 {
			return parsed.Path[1:]
		}
	}
	return ""
}
