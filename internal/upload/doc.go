// Package upload posts audio files to the recognition endpoint and
// classifies the response into the outcome the UI should show.
package upload
