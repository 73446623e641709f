package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_RegisterForm_Valid(t *testing.T) {
	fields := Validate(RegisterForm{
		Name:     "Test User",
		Email:    "a@b.com",
		Password: "12345678",
	})
	assert.Nil(t, fields)
}

func TestValidate_RegisterForm_CollectsEveryField(t *testing.T) {
	fields := Validate(RegisterForm{
		Name:     "",
		Email:    "x@y.com",
		Password: "short",
	})
	require.NotNil(t, fields)

	assert.Equal(t, "is required", fields["name"])
	assert.Equal(t, "must be at least 8 characters", fields["password"])
	_, hasEmail := fields["email"]
	assert.False(t, hasEmail)

	// All failures land in one joined message.
	msg := fields.Flatten()
	assert.Contains(t, msg, "name:")
	assert.Contains(t, msg, "password:")
}

func TestValidate_RegisterForm_BadEmail(t *testing.T) {
	fields := Validate(RegisterForm{
		Name:     "Test User",
		Email:    "not-an-email",
		Password: "12345678",
	})
	require.NotNil(t, fields)
	assert.Equal(t, "must be a valid email address", fields["email"])
}

func TestValidate_JobForm(t *testing.T) {
	valid := JobForm{
		Company:     "Acme",
		Role:        "BACKEND",
		Status:      "APPLIED",
		Source:      "LINKEDIN",
		AppliedDate: "2026-08-01",
	}
	assert.Nil(t, Validate(valid))

	badStatus := valid
	badStatus.Status = "GHOSTED"
	fields := Validate(badStatus)
	require.NotNil(t, fields)
	assert.Contains(t, fields["status"], "must be one of")

	badDate := valid
	badDate.AppliedDate = "01/08/2026"
	fields = Validate(badDate)
	require.NotNil(t, fields)
	assert.Contains(t, fields["appliedDate"], "must be a date")

	// Date is optional; the other fields are not.
	noDate := valid
	noDate.AppliedDate = ""
	assert.Nil(t, Validate(noDate))

	fields = Validate(JobForm{})
	require.NotNil(t, fields)
	assert.Len(t, fields, 4)
}
