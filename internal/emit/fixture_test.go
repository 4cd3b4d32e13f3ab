// SPDX-License-Identifier: MIT

package emit

import (
	"testing"

	"github.com/albertocavalcante/clientgen/model"
)

func int64p(v int64) *int64 { return &v }

// testModel is a small catalog covering every method type, a nullable
// wrapper, flag and string enumerations, and a date property.
type testModel struct {
	project, issue, user *model.Entity
	visibility, access   *model.Enumeration
	projectID, userID    *model.IdentifierWrapper
}

func newTestModel() *testModel {
	tm := &testModel{}

	tm.visibility = &model.Enumeration{
		Name:              "Visibility",
		SerializeAsString: true,
		Members: []*model.EnumerationMember{
			{Name: "private", Value: int64p(0)},
			{Name: "internal", Value: int64p(10)},
			{Name: "public", Value: int64p(20), SerializationName: "public_access"},
		},
	}
	tm.access = &model.Enumeration{
		Name:              "AccessLevel",
		IsFlags:           true,
		GenerateAllMember: true,
		Members: []*model.EnumerationMember{
			{Name: "read", Value: int64p(1)},
			{Name: "write", Value: int64p(2)},
		},
	}

	tm.project = &model.Entity{
		Name:          "Project",
		Documentation: &model.Documentation{Summary: "A project."},
	}
	tm.issue = &model.Entity{Name: "Issue"}
	tm.user = &model.Entity{Name: "User", BaseType: "Account"}

	tm.project.Properties = []*model.Property{
		{Name: "id", Type: model.PrimitiveRef(model.Int64)},
		{Name: "path_with_namespace", Type: model.PrimitiveRef(model.String), JSONConverter: model.ExternalRef("PathConverter")},
		{Name: "created_at", Type: model.PrimitiveRef(model.Date).AsNullable()},
		{Name: "visibility", Type: model.EnumRef(tm.visibility)},
		{Name: "tag_list", Type: model.PrimitiveRef(model.String).AsCollection(), SerializationName: "tags"},
	}
	tm.issue.Properties = []*model.Property{
		{Name: "iid", Type: model.PrimitiveRef(model.Int64)},
		{Name: "title", Type: model.PrimitiveRef(model.String)},
	}
	tm.user.Properties = []*model.Property{
		{Name: "id", Type: model.PrimitiveRef(model.Int64)},
	}

	tm.projectID = &model.IdentifierWrapper{
		Name:      "ProjectIdRef",
		FinalType: model.PrimitiveRef(model.Int64),
		Refs: []*model.Ref{
			{Target: model.PrimitiveRef(model.Int64)},
			{Target: model.EntityRef(tm.project), PropertyPath: []string{"id"}},
		},
	}
	tm.userID = &model.IdentifierWrapper{
		Name:      "UserIdRef",
		FinalType: model.PrimitiveRef(model.Int64),
		Refs: []*model.Ref{
			{Target: model.EntityRef(tm.user), PropertyPath: []string{"id"}},
		},
	}
	return tm
}

func (tm *testModel) methods() []*model.Method {
	projectID := model.WrapperRef(tm.projectID)
	return []*model.Method{
		{
			Name:        "GetProject",
			MethodType:  model.Get,
			URLTemplate: "/projects/:id",
			ReturnType:  model.EntityRef(tm.project),
			Parameters:  []*model.MethodParameter{{Name: "id", Type: projectID}},
		},
		{
			Name:        "GetProjectIssues",
			MethodType:  model.GetPaged,
			URLTemplate: "/projects/:id/issues",
			ReturnType:  model.EntityRef(tm.issue),
			Parameters: []*model.MethodParameter{
				{Name: "state", Type: model.PrimitiveRef(model.String), IsOptional: true},
				{Name: "id", Type: projectID},
			},
		},
		{
			Name:        "GetUsers",
			MethodType:  model.Get,
			URLTemplate: "/users",
			ReturnType:  model.EntityRef(tm.user).AsCollection(),
		},
		{
			Name:        "SearchIssues",
			MethodType:  model.Get,
			URLTemplate: "/issues",
			ReturnType:  model.EntityRef(tm.issue).AsCollection(),
			Parameters: []*model.MethodParameter{
				{Name: "assignee_id", Type: model.WrapperRef(tm.userID).AsNullable(), IsOptional: true},
			},
		},
		{
			Name:        "CreateIssue",
			MethodType:  model.Post,
			URLTemplate: "/projects/:id/issues",
			ReturnType:  model.EntityRef(tm.issue),
			Parameters: []*model.MethodParameter{
				{Name: "id", Type: projectID},
				{Name: "description", Type: model.PrimitiveRef(model.String), IsOptional: true},
				{Name: "title", Type: model.PrimitiveRef(model.String)},
			},
		},
		{
			Name:        "DeleteProject",
			MethodType:  model.Delete,
			URLTemplate: "/projects/:id",
			Parameters:  []*model.MethodParameter{{Name: "id", Type: projectID}},
		},
		{
			Name:        "Ping",
			MethodType:  model.Put,
			URLTemplate: "/ping",
		},
	}
}

func (tm *testModel) registry(t *testing.T) *model.Registry {
	t.Helper()
	reg, err := model.Build(func(b *model.Builder) error {
		for _, e := range []*model.Enumeration{tm.visibility, tm.access} {
			if err := b.AddEnumeration(e); err != nil {
				return err
			}
		}
		for _, e := range []*model.Entity{tm.project, tm.issue, tm.user} {
			if err := b.AddEntity(e); err != nil {
				return err
			}
		}
		for _, w := range []*model.IdentifierWrapper{tm.projectID, tm.userID} {
			if err := b.AddIdentifierWrapper(w); err != nil {
				return err
			}
		}
		for _, m := range tm.methods() {
			if err := b.AddMethod(m); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("model.Build() error = %v", err)
	}
	return reg
}

func (tm *testModel) method(t *testing.T, name string) *model.Method {
	t.Helper()
	for _, m := range tm.methods() {
		if m.Name == name {
			return m
		}
	}
	t.Fatalf("no method %s", name)
	return nil
}
