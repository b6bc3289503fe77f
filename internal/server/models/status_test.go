package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIncidentStatus_Valid(t *testing.T) {
	for _, s := range []IncidentStatus{IncidentNew, IncidentInProgress, IncidentResolved} {
		assert.True(t, s.Valid(), s)
	}
	for _, s := range []IncidentStatus{"", "closed", "NEW", "in_progress"} {
		assert.False(t, s.Valid(), s)
	}
}

func TestLocationType_Valid(t *testing.T) {
	assert.True(t, LocationFire.Valid())
	assert.True(t, LocationType("government").Valid())
	assert.False(t, LocationType("school").Valid())
}

func TestLocationUpdate_Empty(t *testing.T) {
	assert.True(t, LocationUpdate{}.Empty())
	name := "Covered Court"
	assert.False(t, LocationUpdate{Name: &name}.Empty())
}

func TestUser_PrincipalDropsHash(t *testing.T) {
	phone := "0917-000-0000"
	u := &User{ID: "u1", Email: "a@b.c", PasswordHash: "$2a$10$x", FullName: "Ana", Phone: &phone, IsAdmin: true}

	p := u.Principal()

	assert.Equal(t, "u1", p.ID)
	assert.Equal(t, "a@b.c", p.Email)
	assert.Equal(t, "Ana", p.FullName)
	assert.Equal(t, &phone, p.Phone)
	assert.True(t, p.IsAdmin)
}
