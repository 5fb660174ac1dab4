package currencies

// BadgeClass styling applied to fallback badges
const BadgeClass = "w-6 h-6 rounded-full bg-gray-200 flex items-center justify-center text-xs font-bold"

// Badge replaces a flag image that could not be loaded
type Badge struct {
	Text  string `json:"text"`
	Class string `json:"class"`
}

// FlagImage a rendered flag image whose load has failed
type FlagImage interface {
	// Alt accessible alt text of the image, possibly empty
	Alt() string

	// Hide removes the image from view
	Hide()

	// AppendFallback adds badge to the image's container.
	// It reports false when the image has no container.
	AppendFallback(badge Badge) bool
}

// FallbackBadge returns the first two characters of alt, or "??" when alt is empty.
func FallbackBadge(alt string) string {
	if alt == "" {
		return "??"
	}
	r := []rune(alt)
	if len(r) > 2 {
		r = r[:2]
	}
	return string(r)
}

// HandleFlagError hides a broken flag and puts a text badge next to it.
func HandleFlagError(img FlagImage) {
	img.Hide()
	img.AppendFallback(Badge{
		Text:  FallbackBadge(img.Alt()),
		Class: BadgeClass,
	})
}
