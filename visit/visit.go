// Package visit implements depth-first traversal and rewriting of syntax
// trees. Handlers run on enter (pre-order) and leave (post-order) of every
// node and steer the walk through their Result: continue, skip the subtree,
// stop the walk, delete the node, or replace it. Edits are copy-on-write:
// the input tree is never mutated, untouched subtrees are shared between
// the old and new tree, and Visit returns the original root when no edit
// occurred.
package visit

import (
	"fmt"
	"slices"

	"github.com/IAmCuriousDeveloper/go-graphql/ast"
	"github.com/IAmCuriousDeveloper/go-graphql/debug"
)

type action int

const (
	actionContinue action = iota
	actionSkip
	actionStop
	actionDelete
	actionReplace
)

// Result is a handler's verdict on the node it was called with. The zero
// Result means Continue.
type Result struct {
	action action
	node   ast.Node
}

// Continue proceeds with the walk, keeping the current node.
func Continue() Result { return Result{} }

// SkipSubtree, from an enter handler, skips the node's children (its leave
// handler does not run either). From a leave handler it has no effect.
func SkipSubtree() Result { return Result{action: actionSkip} }

// Stop aborts the walk. Edits already committed, including edits pending on
// the ancestors of the current node, are retained in the returned tree.
func Stop() Result { return Result{action: actionStop} }

// Delete removes the current node from its parent. In a sequence slot the
// following siblings shift down; in a single-node slot the slot becomes
// absent. Deleting the root makes Visit return nil.
func Delete() Result { return Result{action: actionDelete} }

// Replace substitutes n for the current node. From an enter handler the
// walk descends into n's children. Replace(nil) is Delete.
func Replace(n ast.Node) Result {
	if n == nil {
		return Delete()
	}
	return Result{action: actionReplace, node: n}
}

// Func is a traversal handler. The cursor is only valid for the duration of
// the call; Path returns a copy that may be retained.
type Func func(c *Cursor, n ast.Node) Result

// Handlers binds an enter and/or leave handler to one node kind.
type Handlers struct {
	Enter Func
	Leave Func
}

// Visitor is a set of traversal handlers. A kind present in Kinds is
// dispatched exclusively through its Handlers entry: the generic Enter and
// Leave are not consulted for that kind, even for a nil Enter or Leave slot.
type Visitor struct {
	Enter Func
	Leave Func
	Kinds map[ast.Kind]Handlers
}

func (v *Visitor) handler(k ast.Kind, leaving bool) Func {
	if v == nil {
		return nil
	}
	if hs, ok := v.Kinds[k]; ok {
		if leaving {
			return hs.Leave
		}
		return hs.Enter
	}
	if leaving {
		return v.Leave
	}
	return v.Enter
}

// EnterKind returns a Visitor running f on enter of nodes of kind k only.
func EnterKind(k ast.Kind, f Func) *Visitor {
	return &Visitor{Kinds: map[ast.Kind]Handlers{k: {Enter: f}}}
}

// Step is one hop of a traversal path: a child field name on a node, or an
// Index into a sequence slot (in which case Field is the empty string and
// Index is >= 0; field steps carry Index -1).
type Step struct {
	Field string
	Index int
}

func (s Step) String() string {
	if s.Field != "" {
		return s.Field
	}
	return fmt.Sprintf("%d", s.Index)
}

// Cursor gives handlers access to the position of the current node. Its
// contents are owned by the walk and only valid during the handler call.
type Cursor struct {
	path      []Step
	ancestors []any
	parent    any
}

// Path returns a copy of the steps from the root to the current node.
func (c *Cursor) Path() []Step { return slices.Clone(c.path) }

// Ancestors returns a copy of the containers above the current node, root
// first. Sequence containers appear as []ast.Node entries.
func (c *Cursor) Ancestors() []any { return slices.Clone(c.ancestors) }

// Parent returns the immediate container of the current node: an ast.Node,
// a []ast.Node sequence, or nil at the root.
func (c *Cursor) Parent() any { return c.parent }

// InvalidNodeError reports a traversal position that is not a valid node.
// It is a contract violation and is raised by panic.
type InvalidNodeError struct {
	Path []Step
	Got  any
}

func (e *InvalidNodeError) Error() string {
	return fmt.Sprintf("visit: invalid node %v at path %v", e.Got, e.Path)
}

// edit is one pending change to the container currently being walked,
// applied when the container is left.
type edit struct {
	key Step
	val any // ast.Node, or []ast.Node for an edited sequence slot
	del bool
}

// frame is the suspended state of an enclosing container.
type frame struct {
	inArray bool
	index   int
	fields  []string
	elems   []ast.Node
	edits   []edit
	prev    *frame
}

// Visit walks the tree rooted at root depth-first, running v's handlers on
// enter and leave of every node, and returns the (possibly rewritten) root.
// If no handler edits the tree the returned root is identical to root.
// Visit panics with *InvalidNodeError when the tree holds something that is
// not a node where a node is required.
func Visit(root ast.Node, v *Visitor) ast.Node {
	if root == nil {
		panic(&InvalidNodeError{Got: nil})
	}

	var (
		stack     *frame
		inArray   bool
		fields    []string   // nil in the synthetic outermost frame
		elems     []ast.Node // set when inArray
		index     = -1
		edits     []edit
		node      any = root
		key       Step
		parent    any
		path      []Step
		ancestors []any
		stopped   bool
		cur       = &Cursor{}
	)

walk:
	for {
		index++
		length := 1
		if inArray {
			length = len(elems)
		} else if fields != nil {
			length = len(fields)
		}
		if stopped && index < length {
			index = length
		}
		isLeaving := index == length
		isEdited := isLeaving && len(edits) != 0
		result := Continue()

		if isLeaving {
			if len(ancestors) == 0 {
				key = Step{Index: -1}
			} else {
				key = path[len(path)-1]
			}
			node = parent
			if n := len(ancestors); n > 0 {
				parent = ancestors[n-1]
				ancestors = ancestors[:n-1]
			} else {
				parent = nil
			}
			if isEdited {
				node = applyEdits(node, edits, path)
			}
			index = stack.index
			fields = stack.fields
			elems = stack.elems
			edits = stack.edits
			inArray = stack.inArray
			stack = stack.prev
		} else if parent != nil {
			if inArray {
				key = Step{Index: index}
				node = any(elems[index])
			} else {
				key = Step{Field: fields[index], Index: -1}
				node = ast.Child(parent.(ast.Node), fields[index])
			}
			if node == nil {
				continue
			}
			path = append(path, key)
		}

		if _, isArr := node.([]ast.Node); !isArr {
			n, ok := node.(ast.Node)
			if !ok || n == nil || !n.Kind().IsValid() {
				panic(&InvalidNodeError{Path: slices.Clone(path), Got: node})
			}
			if !stopped {
				if fn := v.handler(n.Kind(), isLeaving); fn != nil {
					if debug.Visit() {
						dir := "enter"
						if isLeaving {
							dir = "leave"
						}
						debug.Logf("visit: %s %s %v\n", dir, n.Kind(), path)
					}
					cur.path, cur.ancestors, cur.parent = path, ancestors, parent
					result = fn(cur, n)
					switch result.action {
					case actionStop:
						stopped = true
						if !isLeaving {
							if len(path) > 0 {
								path = path[:len(path)-1]
							}
							if stack == nil {
								break walk
							}
							continue
						}
					case actionSkip:
						if !isLeaving {
							if len(path) > 0 {
								path = path[:len(path)-1]
							}
							if stack == nil {
								break walk
							}
							continue
						}
					case actionDelete:
						edits = append(edits, edit{key: key, del: true})
						if !isLeaving {
							if len(path) > 0 {
								path = path[:len(path)-1]
							}
							if stack == nil {
								break walk
							}
							continue
						}
					case actionReplace:
						edits = append(edits, edit{key: key, val: result.node})
						if !isLeaving {
							node = result.node
						}
					}
				}
			}
		}

		// An edited container replaces the original in its parent unless
		// the leave handler already substituted something else.
		if isEdited && result.action != actionReplace && result.action != actionDelete {
			edits = append(edits, edit{key: key, val: node})
		}

		if isLeaving {
			if len(path) > 0 {
				path = path[:len(path)-1]
			}
		} else {
			stack = &frame{
				inArray: inArray,
				index:   index,
				fields:  fields,
				elems:   elems,
				edits:   edits,
				prev:    stack,
			}
			if arr, isArr := node.([]ast.Node); isArr {
				inArray = true
				elems = arr
				fields = nil
			} else {
				inArray = false
				elems = nil
				fields = ast.ChildFields(node.(ast.Node).Kind())
			}
			index = -1
			edits = nil
			if parent != nil {
				ancestors = append(ancestors, parent)
			}
			parent = node
		}

		if stack == nil {
			break
		}
	}

	if len(edits) != 0 {
		last := edits[len(edits)-1]
		if last.del {
			return nil
		}
		n, _ := last.val.(ast.Node)
		return n
	}
	return root
}

// applyEdits materializes a container's pending edits on a fresh shallow
// copy, leaving the original untouched. Sequence deletions shift the
// indexes of the edits recorded after them.
func applyEdits(container any, edits []edit, path []Step) any {
	if arr, ok := container.([]ast.Node); ok {
		out := slices.Clone(arr)
		offset := 0
		for _, e := range edits {
			i := e.key.Index - offset
			if e.del {
				out = slices.Delete(out, i, i+1)
				offset++
				continue
			}
			n, ok := e.val.(ast.Node)
			if !ok {
				panic(&InvalidNodeError{Path: slices.Clone(path), Got: e.val})
			}
			out[i] = n
		}
		return out
	}
	n := ast.Copy(container.(ast.Node))
	for _, e := range edits {
		var v any
		if !e.del {
			v = e.val
		}
		if err := ast.SetChild(n, e.key.Field, v); err != nil {
			panic(&InvalidNodeError{Path: slices.Clone(path), Got: e.val})
		}
	}
	return n
}
