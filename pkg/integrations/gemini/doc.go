// Package gemini integrates with Google's Gemini API to generate card
// content from a free-text company description.
//
// The integration is deliberately minimal: one schema-constrained request
// per user action, no automatic retries, no response caching. Failures are
// reported as coded errors ([errors.ErrCodeMissingAPIKey],
// [errors.ErrCodeGenerationFailed], [errors.ErrCodeParseFailed]) and leave
// the caller's card data untouched; merging a successful payload is the
// job of [card.Apply].
//
// [errors.ErrCodeMissingAPIKey]: github.com/matzehuels/cardstudio/pkg/errors.ErrCodeMissingAPIKey
// [card.Apply]: github.com/matzehuels/cardstudio/pkg/card.Apply
package gemini
