package main

import (
	"speech-studio/cmd/speech-studio/cmd"

	// Import providers to register them
	_ "speech-studio/internal/app/speech/google"
	_ "speech-studio/internal/app/speech/openai"
)

func main() {
	cmd.Execute()
}
