package validation

import (
	"encoding/json"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nestedPayload struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
}

type testPayload struct {
	Username string        `json:"username" binding:"required"`
	Email    string        `json:"email" binding:"required,email"`
	FullName nestedPayload `json:"fullName"`
}

func TestToIssuesNil(t *testing.T) {
	assert.Nil(t, ToIssues(nil))
}

func TestToIssuesReportsEveryViolation(t *testing.T) {
	Init()

	err := binding.Validator.ValidateStruct(&testPayload{Email: "not-an-email"})
	require.Error(t, err)

	issues := ToIssues(err)
	require.Len(t, issues, 4)

	byPath := make(map[string]string, len(issues))
	for _, issue := range issues {
		byPath[issue.Path] = issue.Message
	}
	assert.Equal(t, "is required", byPath["username"])
	assert.Equal(t, "must be a valid email", byPath["email"])
	// nested paths use json names and drop the root struct name
	assert.Equal(t, "is required", byPath["fullName.firstName"])
	assert.Equal(t, "is required", byPath["fullName.lastName"])
}

func TestToIssuesUnmarshalTypeError(t *testing.T) {
	var p testPayload
	err := json.Unmarshal([]byte(`{"email": 5}`), &p)
	require.Error(t, err)

	issues := ToIssues(err)
	require.Len(t, issues, 1)
	assert.Equal(t, "email", issues[0].Path)
	assert.Contains(t, issues[0].Message, "must be of type")
}

func TestToIssuesSyntaxError(t *testing.T) {
	var p testPayload
	err := json.Unmarshal([]byte(`{not json`), &p)
	require.Error(t, err)

	issues := ToIssues(err)
	require.Len(t, issues, 1)
	assert.Equal(t, "payload", issues[0].Path)
}

func TestToIssuesOpaqueError(t *testing.T) {
	issues := ToIssues(assert.AnError)
	require.Len(t, issues, 1)
	assert.Equal(t, "payload", issues[0].Path)
	assert.Equal(t, "invalid payload", issues[0].Message)
}
