package record

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	kiterrors "github.com/invitekit/invitekit/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance returns the shared validator used at the ingestion
// boundary. Validation applies to files authored by hand for the CLI; the
// engine itself accepts any record shape.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New()
	})
	return validateInst
}

// Load reads a record file (YAML, or JSON by extension), validates the
// authored fields, and returns the normalized canonical record.
func Load(path string) (*Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, kiterrors.NewParseError(path, 0, err)
	}

	var raw Record
	if strings.EqualFold(filepath.Ext(path), ".json") {
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, kiterrors.NewParseError(path, 0, err)
		}
	} else {
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, kiterrors.NewParseError(path, extractLine(err), err)
		}
	}

	// Normalize first so legacy spellings ("photo", "soft", named
	// templates) validate as their canonical forms.
	rec := Normalize(raw)
	if err := Validate(&rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Validate checks the authored field formats (dates, colors, URLs, enums).
func Validate(rec *Record) error {
	if rec == nil {
		return kiterrors.NewValidationError("", "record is nil", nil)
	}
	err := validatorInstance().Struct(rec)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if ok := asValidationErrors(err, &fieldErrs); ok && len(fieldErrs) > 0 {
		first := fieldErrs[0]
		msg := fmt.Sprintf("failed %q constraint", first.Tag())
		return kiterrors.NewValidationError(first.Namespace(), msg, err)
	}
	return kiterrors.NewValidationError("", err.Error(), err)
}

func asValidationErrors(err error, target *validator.ValidationErrors) bool {
	ve, ok := err.(validator.ValidationErrors)
	if ok {
		*target = ve
	}
	return ok
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
