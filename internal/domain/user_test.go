package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRole_Valid(t *testing.T) {
	assert.True(t, RoleClient.Valid())
	assert.True(t, RoleMechanic.Valid())
	assert.True(t, RoleManager.Valid())
	assert.False(t, Role("admin").Valid())
	assert.False(t, Role("").Valid())
}

func TestRole_EmployeeRole(t *testing.T) {
	assert.False(t, RoleClient.EmployeeRole())
	assert.True(t, RoleMechanic.EmployeeRole())
	assert.True(t, RoleManager.EmployeeRole())
}

func TestPrincipal(t *testing.T) {
	manager := Principal{ID: 1, Role: RoleManager}
	mechanic := Principal{ID: 2, Role: RoleMechanic}
	client := Principal{ID: 3, Role: RoleClient}

	assert.True(t, manager.IsManager())
	assert.True(t, manager.IsEmployee())

	assert.False(t, mechanic.IsManager())
	assert.True(t, mechanic.IsEmployee())

	assert.False(t, client.IsManager())
	assert.False(t, client.IsEmployee())
}

func TestTaskStatus_Valid(t *testing.T) {
	for _, status := range TaskStatuses {
		assert.True(t, status.Valid())
	}
	assert.False(t, TaskStatus("cancelled").Valid())
}
