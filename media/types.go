package media

// Kind discriminates the authoritative media source for a rendering context.
type Kind string

const (
	KindVideo Kind = "video"
	KindImage Kind = "image"
	KindNone  Kind = "none"
)

// VideoRef is a playable video reference: a provider-assigned playback id
// from which stream and poster URLs are derived.
type VideoRef struct {
	PlaybackID string `json:"playback_id"`
}

// ImageRef is a static image reference.
type ImageRef struct {
	URL string `json:"url"`
	Alt string `json:"alt,omitempty"`
}

// Resolved is the single media decision for a rendering context. When Kind
// is KindNone the consumer must render a themed placeholder; a page never
// shows a broken or empty media region.
type Resolved struct {
	Kind      Kind
	URL       string
	PosterURL string
	Alt       string
}

// Degrade returns the fallback branch for a resolved video whose playback
// failed to start (autoplay rejected, stream unavailable). The poster becomes
// the authoritative image; nothing else on the page changes. Non-video
// resolutions degrade to themselves.
func (r Resolved) Degrade() Resolved {
	if r.Kind != KindVideo {
		return r
	}
	if r.PosterURL == "" {
		return Resolved{Kind: KindNone}
	}
	return Resolved{
		Kind: KindImage,
		URL:  r.PosterURL,
		Alt:  r.Alt,
	}
}

// ThumbnailOptions parametrize poster derivation from the provider's
// thumbnail endpoint.
type ThumbnailOptions struct {
	Time    int
	Width   int
	Height  int
	FitMode string
}
