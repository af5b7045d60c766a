// Package scaffold creates the fixed project skeleton used by "right init":
// docs/, tests/, assets/, scripts/ and a directory named after the project,
// each holding an empty package marker file. Every operation is idempotent;
// existing directories and files are left untouched.
package scaffold
