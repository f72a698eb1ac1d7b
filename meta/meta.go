// meta/meta.go
package meta

// BOARD_SIZE is the side length of the square board.
const BOARD_SIZE = 8

// SEARCH_DEPTH is the number of plies the computer looks ahead.
const SEARCH_DEPTH = 2

// GO_ROUTINES defines the number of root branches expanded concurrently.
const GO_ROUTINES = 4

// GAMES defines the number of self-play games per experiment.
const GAMES = 10
