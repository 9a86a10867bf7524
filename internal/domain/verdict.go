package domain

import "encoding/json"

// Verdict is the judge's answer for one piece of code
type Verdict struct {
	Pass bool `json:"pass"`
	// Tests holds the per-test diagnostics as the judge reported them
	Tests json.RawMessage `json:"tests,omitempty"`
}

// JudgeRequest is everything the judge needs to run a submission
type JudgeRequest struct {
	Code     string `json:"code"`
	Language string `json:"language"`
	Version  string `json:"version"`
	Judge    string `json:"judge"`
}
