// meta/meta.go
package meta

// DefaultDepth is the search depth in plies when none is given.
const DefaultDepth = 6

// MaxTurns bounds the length of engine-run games. Games reaching it are
// recorded without a winner.
const MaxTurns = 300

// NumGames is the number of games per experiment match-up.
const NumGames = 10
