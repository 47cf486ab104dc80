// Package textnorm canonicalizes narration text for comparison against
// speech-to-text transcripts.
//
// The primary use cases are:
//   - Normalizing script excerpts and transcribed words into a shared
//     lowercase, punctuation-free form (digits survive, diacritics fold)
//   - Tokenizing normalized text for window matching
//   - Scoring similarity between token sequences
//
// Normalization is idempotent, so scripts and transcripts can be cleaned
// independently and still compare byte-for-byte when they agree.
package textnorm
