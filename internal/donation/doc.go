// Package donation holds the donation form state: the editable draft, the
// bounded amount slider, the append-only history of submitted donations and
// the Submitter capability invoked when a donation is sent.
package donation
