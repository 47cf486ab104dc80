// Package words decodes the speech-to-text service's raw word-timestamp
// payloads into the pipeline's Word sequence. Transcription itself happens
// outside this module; only the boundary format lives here.
package words
