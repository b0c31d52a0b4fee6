// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"

	"github.com/sizewatch/sizewatch/internal/measure"
	"github.com/sizewatch/sizewatch/internal/normalize"
)

type FlagValidatorType func(any) error

func FlagValidators(value any, validators ...FlagValidatorType) error {
	for _, v := range validators {
		if err := v(value); err != nil {
			return err
		}
	}
	return nil
}

func OutputValidator(value any) error {
	var validOutputFlagValues = []string{"text", "json", "yaml"}
	valid := false
	for _, v := range validOutputFlagValues {
		if v == value {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("must be one of %v", validOutputFlagValues)
	}
	return nil
}

func CompressionValidator(value any) error {
	for _, c := range measure.Compressions {
		if string(c) == value {
			return nil
		}
	}
	return fmt.Errorf("must be one of %v", measure.Compressions)
}

// StripHashValidator fails fast on patterns the normalizer cannot compile.
func StripHashValidator(value any) error {
	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("must be a string")
	}
	_, err := normalize.New(s)
	return err
}

// ThresholdValidator enforces the caller-side contract that the unchanged
// threshold is a non-negative byte count.
func ThresholdValidator(value any) error {
	n, ok := value.(int)
	if !ok {
		return fmt.Errorf("must be an integer")
	}
	if n < 0 {
		return fmt.Errorf("must be >= 0")
	}
	return nil
}
