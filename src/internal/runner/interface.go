package runner

type RunnerInterface interface {
	// Initialize the runner with necessary context and data
	Initialize() error

	// Build the final comment body from the staged transcripts
	BuildReport() (string, error)

	// Publish the comment body (PR comment or local file)
	Publish(body string) error

	// Main routine to process the runner
	Process() error
}
