package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRouteGates(t *testing.T) {
	assert.True(t, AuthorRoles.Contains(RoleCreator))
	assert.False(t, AuthorRoles.Contains(RoleViewer))
	assert.True(t, OperatorRoles.Contains(RoleViewer))
	assert.False(t, OperatorRoles.Contains(RoleUser))
	assert.Equal(t, Roles{RoleUser}, RecipientRoles)
	for _, role := range []Role{RoleAdmin, RoleCreator, RoleViewer, RoleUser} {
		assert.True(t, AllRoles.Contains(role))
	}
}

func TestRole_IsValid(t *testing.T) {
	assert.True(t, RoleViewer.IsValid())
	assert.False(t, Role("owner").IsValid())
}
