/* Package main: shilop, a reverse Polish calculator over real and complex
numbers.

Input is a line of whitespace separated words, evaluated left to right
against a stack that starts out empty; the final stack is printed from
bottom to top. Words are case-insensitive:

	+ - * / ÷       arithmetic; "/" by a divisor within 1e-7 of zero keeps
	                only the divisor
	% mod           floating remainder of two reals; otherwise both operands
	                are left in place
	^ ** pow        raises the real part of one value to the real part of another
	! fac           factorial of an integral real from 0 to 25
	swap pop        stack manipulation
	abs             magnitude
	real re         real part
	i               turns a real n into the imaginary number ni
	imaginary im    imaginary part of a complex value
	sin sine        sine of a real
	cos cosine      cosine of a real
	exp             e raised to a value
	pi e            constants

Anything that parses as a floating point number is pushed as a real value.
An operator that lacks operands, or whose operands lie outside its domain,
leaves the stack alone; unknown words are dropped.

So "3 4 i +" prints 3+4i, "2 0 /" prints 0, and "5 0 %" prints 5 and 0.

Macros

Further words may be defined in a macro file, by default ~/.shilop, one per
line, as a name followed by a space and the words that it stands for:

	sq 2 pow
	tau 2 pi *
	hypot sq swap sq + 0.5 pow

Macros are expanded before evaluation, and may use each other. The file is
rejected as a whole if any macro is part of a cycle, or uses a word that is
neither reserved, numeric, nor defined. Reserved words can not be redefined.

Usage

With an expression given by -e, or as arguments, shilop evaluates it and
prints one value per line. On a terminal it runs an interactive prompt, with
line history kept in ~/.shilop_history. Otherwise each line of standard
input is evaluated in turn, answered by a line of space separated values.
Passing -trace logs every macro expansion pass and every word evaluated.

*/
package main
