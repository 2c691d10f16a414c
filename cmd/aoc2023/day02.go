package main

import "github.com/maisem/aoc2023/internal/cubes"

/*
want=8

Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 1 green, 1 blue
Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red
Game 4: 1 green, 3 red, 6 blue; 3 green, 6 red; 3 green, 15 blue, 14 red
Game 5: 6 red, 1 blue, 3 green; 2 blue, 1 red, 2 green
*/
// answer=2486
func (s solver) D2p1() (any, error) {
	games, err := s.games()
	if err != nil {
		return nil, err
	}
	return cubes.SumPossible(games, cubes.Bag), nil
}

// want=2286
// answer=87984
func (s solver) D2p2() (any, error) {
	games, err := s.games()
	if err != nil {
		return nil, err
	}
	return cubes.SumPower(games), nil
}

func (s solver) games() ([]cubes.Game, error) {
	lines, err := s.Lines()
	if err != nil {
		return nil, err
	}
	return cubes.ParseGames(lines)
}
