// SPDX-License-Identifier: MIT

package csharp

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albertocavalcante/clientgen/generator"
	"github.com/albertocavalcante/clientgen/internal/emit"
	"github.com/albertocavalcante/clientgen/ir"
	"github.com/albertocavalcante/clientgen/model"
)

const catalog = `
enumerations:
  - name: Visibility
    serialize_as_string: true
    members:
      - name: private
        value: 0
      - name: public
        value: 20
        serialization_name: public_access
  - name: AccessLevel
    base_type: int64
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
        doc:
          summary: Creation date.
      - name: visibility
        type: Visibility
      - name: tags
        type: string[]
methods:
  - name: GetProject
    type: get
    url: /projects/:id
    returns: Project
    doc:
      summary: Gets a project & its <details>.
    parameters:
      - name: id
        type: ProjectIdRef
        doc:
          summary: The project.
  - name: ListProjectForks
    type: get_paged
    url: /projects/:id/forks
    returns: Project
    parameters:
      - name: search
        type: string
        optional: true
      - name: id
        type: ProjectIdRef
  - name: CreateProjectLabel
    type: post
    url: /projects/:id/labels
    parameters:
      - name: id
        type: ProjectIdRef
      - name: name
        type: string
      - name: event
        type: string
        optional: true
`

func printCatalog(t *testing.T, p *Printer) string {
	t.Helper()
	regFn, err := model.LoadYAML([]byte(catalog))
	require.NoError(t, err)
	reg, err := model.Build(regFn)
	require.NoError(t, err)

	unit, _, err := emit.Emit(reg, emit.Options{Namespace: "Acme.Api", Source: "test.yaml", Strict: true})
	require.NoError(t, err)

	out, err := p.Print(unit)
	require.NoError(t, err)
	return string(out)
}

func TestPrintHeader(t *testing.T) {
	got := printCatalog(t, &Printer{AsyncSuffix: true})

	want := `// Code generated by clientgen. DO NOT EDIT.
// Source: test.yaml

using System;
using System.Collections.Generic;
using System.Runtime.Serialization;
using System.Threading;
using System.Threading.Tasks;
using ClientGen.Runtime;
using Newtonsoft.Json;
using Newtonsoft.Json.Converters;

namespace Acme.Api
{
`
	assert.True(t, strings.HasPrefix(got, want), "header:\n%s", got[:min(len(got), 400)])
	assert.True(t, strings.HasSuffix(got, "    }\n}\n"))
}

func TestPrintEnumerations(t *testing.T) {
	got := printCatalog(t, &Printer{AsyncSuffix: true})

	assert.Contains(t, got, `    [Flags]
    public enum AccessLevel : long
    {
        Read = 1,
        Write = 2,
        All = AccessLevel.Read | AccessLevel.Write,
    }
`)
	assert.Contains(t, got, `    [JsonConverter(typeof(StringEnumConverter))]
    public enum Visibility
    {
        [EnumMember(Value = "private")]
        Private = 0,
        [EnumMember(Value = "public_access")]
        Public = 20,
    }
`)
}

func TestPrintEntity(t *testing.T) {
	got := printCatalog(t, &Printer{AsyncSuffix: true})

	assert.Contains(t, got, `    public abstract partial class ClientObject
    {
        [JsonIgnore]
        public Client Client { get; internal set; }
    }
`)
	assert.Contains(t, got, `    /// <summary>
    /// A project.
    /// </summary>
    public partial class Project : ClientObject
    {
        private long _id;
        private DateTime? _createdAt;
        private Visibility _visibility;
        private IReadOnlyList<string> _tags;

        [JsonProperty("id")]
        public long Id
        {
            get => _id;
            private set => _id = value;
        }

        /// <summary>
        /// Creation date.
        /// </summary>
        [JsonProperty("created_at")]
        [SkipUtcDateValidation("Does not contain time nor timezone (e.g. 2018-01-01)")]
        public DateTime? CreatedAt
        {
            get => _createdAt;
            private set => _createdAt = value;
        }
`)
}

func TestPrintWrapper(t *testing.T) {
	got := printCatalog(t, &Printer{AsyncSuffix: true})

	assert.Contains(t, got, `    [JsonConverter(typeof(ReferenceJsonConverter))]
    public readonly partial struct ProjectIdRef : IReference
    {
        private readonly long _value;

        public long Value => _value;

        public ProjectIdRef(long value)
        {
            this._value = value;
        }

        public ProjectIdRef(Project value)
        {
            if (value is null)
                throw new ArgumentNullException(nameof(value));

            this._value = value.Id;
        }

        public static implicit operator ProjectIdRef(long value)
        {
            return new ProjectIdRef(value);
        }
`)
}

func TestPrintClientOperations(t *testing.T) {
	got := printCatalog(t, &Printer{AsyncSuffix: true})

	assert.Contains(t, got, `        /// <summary>
        /// Gets a project &amp; its &lt;details&gt;.
        /// </summary>
        /// <param name="id">The project.</param>
        /// <param name="cancellationToken">A cancellation token that can be used by other objects or threads to receive notice of cancellation.</param>
        public Task<Project> GetProjectAsync(ProjectIdRef id, CancellationToken cancellationToken = default)
        {
            var urlBuilder = UrlBuilder.Get("/projects/:id");
            urlBuilder.WithValue("id", id.Value);
            var url = urlBuilder.Build();
            return GetAsync<Project>(url, cancellationToken);
        }
`)

	assert.Contains(t, got, `        public Task CreateProjectLabelAsync(ProjectIdRef id, string name, string @event = default, CancellationToken cancellationToken = default)
        {
            var urlBuilder = UrlBuilder.Get("/projects/:id/labels");
            urlBuilder.WithValue("id", id.Value);
            var url = urlBuilder.Build();
            var body = new Dictionary<string, object>(StringComparer.Ordinal);
            body.Add("name", name);
            if (@event != null)
            {
                body.Add("event", @event);
            }
            return PostJsonAsync(url, body, cancellationToken);
        }
`)

	assert.Contains(t, got, `            if (pageOptions != null)
            {
                if (pageOptions.PageIndex > 0)
                {
                    urlBuilder.WithValue("page", pageOptions.PageIndex);
                }
                if (pageOptions.PageSize > 0)
                {
                    urlBuilder.WithValue("per_page", pageOptions.PageSize);
                }
                if (!string.IsNullOrEmpty(pageOptions.OrderBy.Name))
                {
                    urlBuilder.WithValue("order_by", pageOptions.OrderBy.Name);
                    urlBuilder.WithValue("sort", pageOptions.OrderBy.Direction);
                }
            }
            var url = urlBuilder.Build();
            return GetPagedAsync<Project>(url, cancellationToken);
`)
}

func TestPrintExtensions(t *testing.T) {
	got := printCatalog(t, &Printer{AsyncSuffix: true})

	assert.Contains(t, got, `        public Task<Project> GetAsync(CancellationToken cancellationToken = default)
        {
            return this.Client.GetProjectAsync(this, cancellationToken);
        }
`)
	assert.Contains(t, got, `        public Task<PagedResponse<Project>> ListForksAsync(string search = default, PageOptions pageOptions = default, CancellationToken cancellationToken = default)
        {
            return this.Client.ListProjectForksAsync(this, search, pageOptions, cancellationToken);
        }
`)
	assert.Contains(t, got, "public Task CreateLabelAsync(string name, string @event = default, CancellationToken cancellationToken = default)")
}

func TestPrintWithoutAsyncSuffix(t *testing.T) {
	got := printCatalog(t, &Printer{})

	assert.Contains(t, got, "public Task<Project> GetProject(ProjectIdRef id, ")
	assert.Contains(t, got, "return this.Client.GetProject(this, cancellationToken);")
	// Request helpers keep their suffix.
	assert.Contains(t, got, "return GetAsync<Project>(url, cancellationToken);")
	assert.Contains(t, got, "using ClientGen.Runtime;")
}

func TestPrintRuntimeNamespace(t *testing.T) {
	got := printCatalog(t, &Printer{RuntimeNamespace: "Acme.Core"})
	assert.Contains(t, got, "using Acme.Core;")
	assert.NotContains(t, got, "ClientGen.Runtime")
}

func TestPresent(t *testing.T) {
	p := &printer{usings: map[string]bool{}}
	got := p.expr(&ir.Present{
		X:    &ir.Ident{Name: "visibility"},
		Type: &ir.TypeRef{Kind: ir.Named, Name: "Visibility", Of: ir.NamedEnum, Value: true},
	})
	assert.Equal(t, "visibility != null", got)

	got = p.expr(&ir.Present{
		X:    &ir.Ident{Name: "count"},
		Type: &ir.TypeRef{Kind: ir.Primitive, Name: "int32", Value: true, Nullable: true},
	})
	assert.Equal(t, "count != null", got)

	got = p.expr(&ir.Unwrap{X: &ir.Ident{Name: "assigneeId"}, Nullable: true})
	assert.Equal(t, "assigneeId.Value.Value", got)
}

func TestTypeNames(t *testing.T) {
	tests := []struct {
		typ  *ir.TypeRef
		want string
	}{
		{&ir.TypeRef{Kind: ir.Primitive, Name: "int32"}, "int"},
		{&ir.TypeRef{Kind: ir.Primitive, Name: "int64", Nullable: true}, "long?"},
		{&ir.TypeRef{Kind: ir.Primitive, Name: "date"}, "DateTime"},
		{&ir.TypeRef{Kind: ir.Primitive, Name: "duration"}, "TimeSpan"},
		{&ir.TypeRef{Kind: ir.Primitive, Name: "object"}, "object"},
		{&ir.TypeRef{Kind: ir.IterableSeq, Elem: &ir.TypeRef{Kind: ir.Named, Name: "Project"}}, "IEnumerable<Project>"},
		{ir.Void(), "Task"},
		{ir.Await(&ir.TypeRef{Kind: ir.Paged, Elem: &ir.TypeRef{Kind: ir.Named, Name: "Issue"}}), "Task<PagedResponse<Issue>>"},
		{ir.Builtin(ir.BodyMap), "Dictionary<string, object>"},
		{ir.Builtin(ir.Cancellation), "CancellationToken"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			p := &printer{runtime: DefaultRuntimeNamespace, usings: map[string]bool{}}
			assert.Equal(t, tt.want, p.typeName(tt.typ))
		})
	}
}

func TestQuoteAndIdent(t *testing.T) {
	assert.Equal(t, `"a\"b\\c\n"`, quote("a\"b\\c\n"))
	assert.Equal(t, "@namespace", ident("namespace"))
	assert.Equal(t, "projectId", ident("projectId"))
	assert.Equal(t, "", enumBase("int32"))
	assert.Equal(t, " : long", enumBase("int64"))
}

func TestGenerate(t *testing.T) {
	regFn, err := model.LoadYAML([]byte(catalog))
	require.NoError(t, err)
	reg, err := model.Build(regFn)
	require.NoError(t, err)

	g := NewGenerator()
	assert.Equal(t, "csharp", g.Metadata().Name)

	out, err := g.Generate(context.Background(), reg, generator.Config{ClientName: "GitLabClient", Namespace: "Acme"})
	require.NoError(t, err)
	require.Equal(t, []string{"GitLabClient.cs"}, out.Names())
	assert.Contains(t, string(out.Files["GitLabClient.cs"]), "public partial class GitLabClient\n")

	out, err = g.Generate(context.Background(), reg, generator.Config{OutputFile: "Api.g.cs", Types: []string{"GetProject"}, ResolveDeps: true})
	require.NoError(t, err)
	src := string(out.Files["Api.g.cs"])
	assert.Contains(t, src, "GetProjectAsync")
	assert.NotContains(t, src, "ListProjectForksAsync")
	assert.NotContains(t, src, "enum AccessLevel")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = g.Generate(ctx, reg, generator.Config{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPrintOptionalValueArguments(t *testing.T) {
	regFn, err := model.LoadYAML([]byte(`
entities:
  - name: Issue
    properties:
      - name: iid
        type: int64
methods:
  - name: UpdateIssue
    type: put
    url: /issues/:iid
    returns: Issue
    parameters:
      - name: iid
        type: int64
      - name: confidential
        type: bool
        optional: true
      - name: weight
        type: int32
        optional: true
`))
	require.NoError(t, err)
	reg, err := model.Build(regFn)
	require.NoError(t, err)
	unit, _, err := emit.Emit(reg, emit.Options{Namespace: "Acme.Api", Strict: true})
	require.NoError(t, err)
	out, err := (&Printer{AsyncSuffix: true}).Print(unit)
	require.NoError(t, err)
	got := string(out)

	assert.Contains(t, got, "UpdateIssueAsync(long iid, bool? confidential = default, int? weight = default, CancellationToken cancellationToken = default)")
	assert.Contains(t, got, "if (confidential != null)")
	assert.Contains(t, got, "if (weight != null)")
	assert.NotContains(t, got, "Equals(")
}
