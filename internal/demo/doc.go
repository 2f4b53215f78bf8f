// Package demo provides the sample shell started by `tconsole run`.
//
// The shell registers a small command set on a console and runs the prompt
// loop until quit or end of input:
//
//	quit, q, exit      end the session
//	echo, say <text>   print one word
//	add, sum <a> <b>   print the sum of two integers
//	enable <name>      add a command to the active set
//	disable <name>     remove a command from the active set
//	lock               leave only unlock, help and quit active
//	unlock             activate every command again
//	status             print the active command count
//	help               list the active commands
//
// status is the usual choice for the blank command.
package demo
