// Package mocks provides centralized mock implementations for testing.
//
// Instead of defining inline mocks in individual test files, these
// standardized mock implementations can be reused across packages:
//
//	gen := mocks.NewMockGeneratorWithCompletion("VALID - ok")
//	svc, _ := service.NewValidationService(builder, gen, "stub", logger)
//	...
//	assert.Equal(t, 1, gen.CallCount())
package mocks
