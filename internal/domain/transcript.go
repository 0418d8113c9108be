package domain

// Transcription job states reported by the upstream service.
const (
	TranscriptQueued     = "queued"
	TranscriptProcessing = "processing"
	TranscriptCompleted  = "completed"
	TranscriptError      = "error"
	TranscriptFailed     = "failed"
)

// TranscriptJob is the status of a remote transcription job.
type TranscriptJob struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Text   string `json:"text"`
	Error  string `json:"error"`
}

// Done reports whether the job reached a terminal state.
func (j TranscriptJob) Done() bool {
	return j.Status == TranscriptCompleted || j.Failed()
}

// Failed reports whether the job ended without a transcript.
func (j TranscriptJob) Failed() bool {
	return j.Status == TranscriptError || j.Status == TranscriptFailed
}
