package adoption

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-adoption-portal/internal/validation"
)

func TestForm_Validate(t *testing.T) {
	ok := Form{PetID: "p1", AdopterName: "Ada", AdopterEmail: "ada@example.com", AdopterPhone: "+1 555 123 4567"}
	assert.NoError(t, ok.Validate())

	bad := ok
	bad.AdopterEmail = "not-an-email"
	var fe validation.FieldErrors
	require.True(t, errors.As(bad.Validate(), &fe))
	assert.Contains(t, fe, "adopterEmail")

	bad = ok
	bad.AdopterPhone = "123"
	require.True(t, errors.As(bad.Validate(), &fe))
	assert.Contains(t, fe, "adopterPhone")

	bad = ok
	bad.AdopterName = "   "
	require.True(t, errors.As(bad.Validate(), &fe))
	assert.Contains(t, fe, "adopterName")
}

func TestForm_Normalized(t *testing.T) {
	f := Form{AdopterEmail: " Ada@Example.COM ", AdopterName: " Ada "}.Normalized()
	assert.Equal(t, "ada@example.com", f.AdopterEmail)
	assert.Equal(t, "Ada", f.AdopterName)
}

func TestFilter_Apply(t *testing.T) {
	list := []Request{
		{ID: "1", AdoptionStatus: StatusPending},
		{ID: "2", AdoptionStatus: StatusApproved},
		{ID: "3", AdoptionStatus: StatusPending},
	}
	assert.Len(t, Filter{}.Apply(list), 3)
	assert.Len(t, Filter{Status: "all"}.Apply(list), 3)
	assert.Len(t, Filter{Status: "pending"}.Apply(list), 2)
	assert.Empty(t, Filter{Status: "rejected"}.Apply(list))
}

func TestStatus_Valid(t *testing.T) {
	assert.True(t, StatusApproved.Valid())
	assert.False(t, Status("maybe").Valid())
}
