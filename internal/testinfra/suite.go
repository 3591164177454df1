//go:build integration
// +build integration

package testinfra

import (
	"context"
	"fmt"
)

type TestSuite struct {
	Processor *FakeProcessor
	Kafka     *KafkaContainer
}

type SuiteOptions struct {
	WithKafka bool
}

// NewTestSuite creates all infrastructure for tests
func NewTestSuite(ctx context.Context, opts SuiteOptions) (*TestSuite, error) {
	suite := &TestSuite{Processor: NewFakeProcessor()}

	if opts.WithKafka {
		k, err := NewKafka(ctx)
		if err != nil {
			suite.Cleanup(ctx)
			return nil, fmt.Errorf("kafka: %w", err)
		}
		suite.Kafka = k
	}

	return suite, nil
}

func (s *TestSuite) Cleanup(ctx context.Context) {
	if s.Kafka != nil {
		s.Kafka.Cleanup(ctx)
	}
	if s.Processor != nil {
		s.Processor.Cleanup()
	}
}
