package testutil

// ScholarsMatePGN is a seven-ply game ending in mate.
const ScholarsMatePGN = `[Event "Casual"]
[Site "Local"]
[Date "2024.01.01"]
[Round "1"]
[White "Alice"]
[Black "Bob"]
[Result "1-0"]

1. e4 e5 2. Bc4 Nc6 3. Qh5 Nf6 4. Qxf7# 1-0
`

// RuyLopezPGN is a six-ply opening fragment.
const RuyLopezPGN = `[Event "Club"]
[Site "Local"]
[Date "2024.02.03"]
[Round "2"]
[White "Carol"]
[Black "Dave"]
[Result "1/2-1/2"]

1. e4 e5 2. Nf3 Nc6 3. Bb5 a6 1/2-1/2
`

// FoolsMatePGN is the shortest possible mate.
const FoolsMatePGN = `[Event "Casual"]
[Site "Local"]
[Date "2024.03.04"]
[Round "3"]
[White "Carol"]
[Black "Alice"]
[Result "0-1"]

1. f3 e5 2. g4 Qh4# 0-1
`

// MultiGamePGN holds all three sample games.
const MultiGamePGN = ScholarsMatePGN + "\n" + RuyLopezPGN + "\n" + FoolsMatePGN
