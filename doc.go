/* Package charm implements the execution core of Charm, a small
concatenative (stack-oriented) language.

A Charm program is a flat, ordered sequence of terms. Execution consumes
terms left to right, treating each one as an operation against one of
several named operand stacks — there is no AST, no separate compile step,
and no statement/expression distinction. A term is one of five things: a
number or string literal, a quoted list (a boxed program fragment, pushed as
a value and only run when something explicitly asks to run it), a reference
to a user-defined word by name, or a definition that binds a name to a body
the next time it is reached.

Built-in words and user-defined words are dispatched the same way — by
name, looked up at the site of a Defined term — built-ins simply win ties,
so a user definition can never shadow one. There is exactly one control-flow
primitive, ifthen, and no native looping construct at all: loops are written
as self-recursive definitions whose tail position calls back into the
definition's own name, and the runner and ifthen both recognize that shape
and rewrite it into an ordinary loop instead of growing the host call stack.

This package covers the interpreter runtime only: the Term value model, the
per-stack operand model and stack registry, the function analyzer (which
decides what can be inlined and what is tail-recursive), the built-in
table, and the runner that ties them together. Source-level lexing and
parsing, a command-line front end, and an optional graphical I/O skin are
external collaborators with thin interfaces — see the RunnerContext and
ioSurface types for the seams they plug into — and are not implemented
here; cmd/charm wires up just enough of a front end to run a program.

*/
package charm
