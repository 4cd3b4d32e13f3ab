// SPDX-License-Identifier: MIT

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albertocavalcante/clientgen/internal/errors"
)

const catalogYAML = `
enumerations:
  - name: AccessLevel
    flags: true
    generate_all: true
    members:
      - name: read
        value: 1
      - name: write
        value: 2
identifier_wrappers:
  - name: ProjectIdRef
    final_type: int64
    refs:
      - type: int64
      - type: Project
        path: [id]
entities:
  - name: Project
    doc:
      summary: A project.
    properties:
      - name: id
        type: int64
      - name: created_at
        type: date?
        serialization_name: createdAt
      - name: tags
        type: string[]
      - name: duration
        type: int64
        converter: DurationConverter
methods:
  - name: GetProject
    type: get
    url: /projects/:id
    returns: Project
    parameters:
      - name: id
        type: ProjectIdRef
  - name: SearchProjects
    type: get_paged
    url: /projects
    returns: Project
    parameters:
      - name: search
        type: string
        optional: true
        location: url
        argument_name: query
`

func TestLoadYAML(t *testing.T) {
	reg, err := LoadYAML([]byte(catalogYAML))
	require.NoError(t, err)

	r, err := Build(reg)
	require.NoError(t, err)

	project, ok := r.Entity("Project")
	require.True(t, ok)
	require.Len(t, project.Properties, 4)
	assert.Equal(t, "A project.", project.Documentation.Summary)

	created := project.Properties[1]
	assert.True(t, created.Type.IsNullable())
	assert.Equal(t, Date, created.Type.Primitive())
	assert.Equal(t, "createdAt", created.WireName())

	assert.True(t, project.Properties[2].Type.IsCollection())

	conv := project.Properties[3].JSONConverter
	require.NotNil(t, conv)
	assert.Equal(t, RefExternal, conv.Kind())
	assert.Equal(t, "DurationConverter", conv.Name())

	w, ok := r.IdentifierWrapper("ProjectIdRef")
	require.True(t, ok)
	require.Len(t, w.Refs, 2)
	assert.Empty(t, w.Refs[0].PropertyPath)
	assert.Same(t, project, w.Refs[1].Target.Entity(), "refs resolve to the declared entity")
	assert.Equal(t, []string{"id"}, w.Refs[1].PropertyPath)

	e, ok := r.Enumeration("AccessLevel")
	require.True(t, ok)
	assert.True(t, e.IsFlags)
	assert.True(t, e.GenerateAllMember)
	require.Len(t, e.Members, 2)
	assert.EqualValues(t, 2, *e.Members[1].Value)

	m, ok := r.Method("SearchProjects")
	require.True(t, ok)
	assert.Equal(t, GetPaged, m.MethodType)
	assert.Equal(t, LocationURL, m.Parameters[0].Location)
	assert.Equal(t, "query", m.Parameters[0].OverrideArgumentName)
	assert.True(t, m.Parameters[0].IsOptional)

	get, _ := r.Method("GetProject")
	assert.Equal(t, RefIdentifier, get.Parameters[0].Type.Kind())
}

func TestLoadYAML_UnknownType(t *testing.T) {
	_, err := LoadYAML([]byte(`
entities:
  - name: Project
    properties:
      - name: owner
        type: User
`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrUnknownType))
	assert.Contains(t, err.Error(), "property owner")
	assert.NotEmpty(t, errors.GetAllHints(err))
}

func TestLoadYAML_Malformed(t *testing.T) {
	_, err := LoadYAML([]byte("entities: [unterminated"))
	require.Error(t, err)
}

func TestLoadYAML_KeepsUnknownMethodType(t *testing.T) {
	reg, err := LoadYAML([]byte(`
methods:
  - name: Patch
    type: patch
    url: /x
`))
	require.NoError(t, err)
	r, err := Build(reg)
	require.NoError(t, err)
	m, _ := r.Method("Patch")
	assert.Equal(t, MethodType("patch"), m.MethodType)
}
