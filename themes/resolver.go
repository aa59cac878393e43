package themes

import "fmt"

// UnknownAccentError marks an accent key outside the closed enumeration.
// Page composers must reject it at build time rather than fall back.
type UnknownAccentError struct {
	Accent Accent
}

func (e *UnknownAccentError) Error() string {
	return fmt.Sprintf("themes: unknown accent %q", string(e.Accent))
}

// Resolve maps a brand accent to its visual-role tokens. The mapping is
// exhaustive over the closed accent set; anything else is a configuration
// error.
func Resolve(accent Accent) (ThemeTokens, error) {
	switch accent {
	case AccentIndigo:
		return ThemeTokens{
			Accent:      AccentIndigo,
			Badge:       "bg-indigo-100 text-indigo-800",
			Button:      "bg-indigo-600 hover:bg-indigo-700",
			Gradient:    "from-indigo-500 to-violet-600",
			Border:      "border-indigo-200",
			Placeholder: "from-indigo-50 to-white",
		}, nil
	case AccentEmerald:
		return ThemeTokens{
			Accent:      AccentEmerald,
			Badge:       "bg-emerald-100 text-emerald-800",
			Button:      "bg-emerald-600 hover:bg-emerald-700",
			Gradient:    "from-emerald-500 to-teal-600",
			Border:      "border-emerald-200",
			Placeholder: "from-emerald-50 to-white",
		}, nil
	case AccentBlue:
		return ThemeTokens{
			Accent:      AccentBlue,
			Badge:       "bg-blue-100 text-blue-800",
			Button:      "bg-blue-600 hover:bg-blue-700",
			Gradient:    "from-blue-500 to-sky-600",
			Border:      "border-blue-200",
			Placeholder: "from-blue-50 to-white",
		}, nil
	case AccentAmber:
		return ThemeTokens{
			Accent:      AccentAmber,
			Badge:       "bg-amber-100 text-amber-800",
			Button:      "bg-amber-600 hover:bg-amber-700",
			Gradient:    "from-amber-400 to-orange-500",
			Border:      "border-amber-200",
			Placeholder: "from-amber-50 to-white",
		}, nil
	default:
		return ThemeTokens{}, &UnknownAccentError{Accent: accent}
	}
}

// MustResolve is a convenience for callers that have already validated the
// brand configuration.
func MustResolve(accent Accent) ThemeTokens {
	tokens, err := Resolve(accent)
	if err != nil {
		panic(err)
	}
	return tokens
}
