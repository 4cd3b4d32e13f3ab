// SPDX-License-Identifier: MIT

package emit

import (
	"fmt"
	"reflect"

	"github.com/albertocavalcante/clientgen/ir"
)

// The evaluator runs synthesized operation bodies against concrete argument
// values. Wrappers, paging options and entities are modeled as
// map[string]any keyed by member name; absent values are nil.

type pair struct {
	Key   string
	Value any
}

type urlBuilder struct {
	Template string
	Values   []pair
}

type bodyMap struct {
	Entries []pair
}

// dispatch records the transport call an operation ended with.
type dispatch struct {
	Primitive string
	URL       *urlBuilder
	Body      *bodyMap
	HasBody   bool
	Cancel    any
}

type evaluator struct {
	env    map[string]any
	result *dispatch
}

func evaluate(body []ir.Stmt, args map[string]any) (*dispatch, error) {
	ev := &evaluator{env: make(map[string]any)}
	for k, v := range args {
		ev.env[k] = v
	}
	if err := ev.stmts(body); err != nil {
		return nil, err
	}
	if ev.result == nil {
		return nil, fmt.Errorf("body did not dispatch")
	}
	return ev.result, nil
}

func (ev *evaluator) stmts(list []ir.Stmt) error {
	for _, s := range list {
		if err := ev.stmt(s); err != nil {
			return err
		}
		if ev.result != nil {
			return nil
		}
	}
	return nil
}

func (ev *evaluator) stmt(s ir.Stmt) error {
	switch s := s.(type) {
	case *ir.VarDecl:
		v, err := ev.expr(s.Value)
		if err != nil {
			return err
		}
		ev.env[s.Name] = v
	case *ir.ExprStmt:
		_, err := ev.expr(s.X)
		return err
	case *ir.If:
		c, err := ev.expr(s.Cond)
		if err != nil {
			return err
		}
		if c.(bool) {
			return ev.stmts(s.Then)
		}
	case *ir.SetEntry:
		m, err := ev.expr(s.Map)
		if err != nil {
			return err
		}
		v, err := ev.expr(s.Value)
		if err != nil {
			return err
		}
		b := m.(*bodyMap)
		b.Entries = append(b.Entries, pair{s.Key, v})
	case *ir.Return:
		call, ok := s.X.(*ir.TransportCall)
		if !ok {
			return fmt.Errorf("return of %T", s.X)
		}
		return ev.transport(call)
	default:
		return fmt.Errorf("unsupported statement %T", s)
	}
	return nil
}

func (ev *evaluator) transport(call *ir.TransportCall) error {
	u, err := ev.expr(call.URL)
	if err != nil {
		return err
	}
	d := &dispatch{Primitive: call.Primitive, URL: u.(*urlBuilder)}
	if call.Body != nil {
		b, err := ev.expr(call.Body)
		if err != nil {
			return err
		}
		if b != nil {
			d.Body = b.(*bodyMap)
			d.HasBody = true
		}
	}
	if d.Cancel, err = ev.expr(call.Cancel); err != nil {
		return err
	}
	ev.result = d
	return nil
}

func (ev *evaluator) expr(e ir.Expr) (any, error) {
	switch e := e.(type) {
	case *ir.Ident:
		v, ok := ev.env[e.Name]
		if !ok {
			return nil, fmt.Errorf("undefined %s", e.Name)
		}
		return v, nil
	case *ir.StringLit:
		return e.Value, nil
	case *ir.IntLit:
		return e.Value, nil
	case *ir.Null:
		return nil, nil
	case *ir.NewURLBuilder:
		return &urlBuilder{Template: e.Template}, nil
	case *ir.NewBodyMap:
		return &bodyMap{}, nil
	case *ir.Member:
		x, err := ev.expr(e.X)
		if err != nil {
			return nil, err
		}
		m, ok := x.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("member %s of %T", e.Name, x)
		}
		return m[e.Name], nil
	case *ir.Unwrap:
		x, err := ev.expr(e.X)
		if err != nil {
			return nil, err
		}
		if x == nil {
			return nil, fmt.Errorf("unwrap of absent wrapper")
		}
		return x.(map[string]any)["Value"], nil
	case *ir.Present:
		x, err := ev.expr(e.X)
		if err != nil {
			return nil, err
		}
		return x != nil && !(reflect.ValueOf(x).Kind() == reflect.Map && reflect.ValueOf(x).IsNil()), nil
	case *ir.NonEmpty:
		x, err := ev.expr(e.X)
		if err != nil {
			return nil, err
		}
		s, _ := x.(string)
		return s != "", nil
	case *ir.Greater:
		x, err := ev.expr(e.X)
		if err != nil {
			return nil, err
		}
		y, err := ev.expr(e.Y)
		if err != nil {
			return nil, err
		}
		return toInt(x) > toInt(y), nil
	case *ir.MethodCall:
		recv, err := ev.expr(e.Recv)
		if err != nil {
			return nil, err
		}
		b := recv.(*urlBuilder)
		switch e.Name {
		case ir.URLBuilderWithValue:
			k, err := ev.expr(e.Args[0])
			if err != nil {
				return nil, err
			}
			v, err := ev.expr(e.Args[1])
			if err != nil {
				return nil, err
			}
			b.Values = append(b.Values, pair{k.(string), v})
			return nil, nil
		case ir.URLBuilderBuild:
			return b, nil
		}
		return nil, fmt.Errorf("unknown builder method %s", e.Name)
	}
	return nil, fmt.Errorf("unsupported expression %T", e)
}

func toInt(v any) int64 {
	switch v := v.(type) {
	case int:
		return int64(v)
	case int64:
		return v
	}
	return 0
}

func (b *urlBuilder) keys() []string {
	var keys []string
	for _, p := range b.Values {
		keys = append(keys, p.Key)
	}
	return keys
}
