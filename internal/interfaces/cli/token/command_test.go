package token

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shjfcs/foodwatch/internal/infrastructure/auth"
	"github.com/shjfcs/foodwatch/internal/shared/authorization"
)

func TestIssueCommand(t *testing.T) {
	t.Setenv("FOODWATCH_AUTH_JWT_SECRET", "token-command-secret-token-command")
	t.Setenv("FOODWATCH_AUTH_JWT_ISSUER", "foodwatch")

	cmd := NewCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"issue", "--empid", "17", "--role", "inspector", "--config", ""})

	require.NoError(t, cmd.Execute())

	signed := strings.TrimSpace(out.String())
	claims, err := auth.NewJWTService("token-command-secret-token-command", "foodwatch", 15).Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, int64(17), claims.EmpID)
	assert.Equal(t, authorization.RoleInspector, claims.Role)
	assert.Contains(t, errOut.String(), "expires")
}

func TestIssueCommand_RejectsUnknownRole(t *testing.T) {
	cmd := NewCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"issue", "--empid", "1", "--role", "visitor"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown role")
}

func TestIssueCommand_RejectsNonPositiveEmpID(t *testing.T) {
	cmd := NewCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"issue", "--empid", "0", "--role", "clerk"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empid")
}
