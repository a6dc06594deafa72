// Command adtctl builds and inspects general trees, positional lists and
// slot arrays from the command line.
package main

func main() {
	execute()
}
