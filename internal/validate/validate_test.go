package validate_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/visheshsahu1513/Smart-Learning/internal/domain"
	"github.com/visheshsahu1513/Smart-Learning/internal/errdefs"
	"github.com/visheshsahu1513/Smart-Learning/internal/validate"
)

func TestStruct(t *testing.T) {
	t.Run("ValidInput", func(t *testing.T) {
		err := validate.Struct(domain.Credentials{Email: "a@b.com", Password: "secret"})
		assert.NoError(t, err)
	})

	t.Run("InvalidEmail", func(t *testing.T) {
		err := validate.Struct(domain.Credentials{Email: "nope", Password: "secret"})
		require.Error(t, err)
		assert.Equal(t, errdefs.KindValidation, errdefs.KindOf(err))
		assert.Contains(t, err.Error(), "email")
	})

	t.Run("AllViolationsReported", func(t *testing.T) {
		err := validate.Struct(domain.Credentials{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "email")
		assert.Contains(t, err.Error(), "password")
	})

	t.Run("MissingFilename", func(t *testing.T) {
		err := validate.Struct(domain.UploadMaterialInput{
			CourseID: 1,
			Title:    "Notes",
			File:     domain.FileUpload{Name: "", Content: strings.NewReader("x")},
		})
		require.Error(t, err)
		assert.Equal(t, errdefs.KindValidation, errdefs.KindOf(err))
	})

	t.Run("MissingGradeTarget", func(t *testing.T) {
		err := validate.Struct(domain.GradeInput{Grade: "A"})
		require.Error(t, err)
	})
}
