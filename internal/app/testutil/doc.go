// Package testutil provides shared test doubles and fixtures.
//
// Mocks are built on testify/mock and bound to the calling test with
// m.Test(t), so unexpected calls fail the test instead of panicking:
//
//	transcriber := testutil.NewMockTranscriptionService(t)
//	transcriber.On("Transcribe", mock.Anything, audio).Return("hello\n", nil).Once()
//	...
//	transcriber.AssertExpectations(t)
//
// Fixtures cover WAV payloads (SilentWAV) and log capture (NewObservedLogger).
package testutil
