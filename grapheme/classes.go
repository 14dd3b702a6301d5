package grapheme

// Scalar-value classes the boundary rules distinguish. Everything outside
// these classes is a default cluster starter.
const (
	riFirst = 0x1F1E6 // REGIONAL INDICATOR SYMBOL LETTER A
	riLast  = 0x1F1FF // REGIONAL INDICATOR SYMBOL LETTER Z

	zwj = 0x200D // ZERO WIDTH JOINER

	modifierFirst = 0x1F3FB // EMOJI MODIFIER FITZPATRICK TYPE-1-2
	modifierLast  = 0x1F3FF // EMOJI MODIFIER FITZPATRICK TYPE-6

	variationFirst = 0xFE00 // VARIATION SELECTOR-1
	variationLast  = 0xFE0F // VARIATION SELECTOR-16

	tagFirst  = 0xE0020 // TAG SPACE
	tagLast   = 0xE007E // TAG TILDE
	cancelTag = 0xE007F // CANCEL TAG

	enclosingFirst = 0x20DD // COMBINING ENCLOSING CIRCLE
	enclosingLast  = 0x20E4 // COMBINING ENCLOSING UPWARD POINTING TRIANGLE
)

// isRegionalIndicator reports whether r is one of the 26 flag letters.
func isRegionalIndicator(r rune) bool { return r >= riFirst && r <= riLast }

// isModifier reports whether r is an emoji skin-tone modifier.
func isModifier(r rune) bool { return r >= modifierFirst && r <= modifierLast }

// isVariationSelector reports whether r selects presentation style.
func isVariationSelector(r rune) bool { return r >= variationFirst && r <= variationLast }

// isTag reports whether r is a tag scalar (cancel tag excluded).
func isTag(r rune) bool { return r >= tagFirst && r <= tagLast }

// isEnclosingMark reports whether r is a combining enclosing mark.
func isEnclosingMark(r rune) bool { return r >= enclosingFirst && r <= enclosingLast }
