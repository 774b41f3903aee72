package main

// Exit codes for the pdf2img CLI.
// Conversion failures are reported inside the JSON result with success:false
// and still exit 0; non-zero codes are reserved for invocation problems.
const (
	ExitSuccess = 0 // Successful run, including reported conversion failures
	ExitGeneral = 1 // Unexpected internal fault
	ExitUsage   = 2 // Invalid flags, config, or validation
)
