package cli

// Export internal functions for testing.

// RunSummoner exports runSummoner for testing.
var RunSummoner = runSummoner

// RunMatches exports runMatches for testing.
var RunMatches = runMatches

// RunStatus exports runStatus for testing.
var RunStatus = runStatus

// RunChampions exports runChampions for testing.
var RunChampions = runChampions

// RunVersions exports runVersions for testing.
var RunVersions = runVersions

// RunTournamentCode exports runTournamentCode for testing.
var RunTournamentCode = runTournamentCode

// RunTournamentEvents exports runTournamentEvents for testing.
var RunTournamentEvents = runTournamentEvents

// RunConfigSet exports runConfigSet for testing.
var RunConfigSet = runConfigSet

// RunConfigGet exports runConfigGet for testing.
var RunConfigGet = runConfigGet

// RunConfigList exports runConfigList for testing.
var RunConfigList = runConfigList

// ResolveKeys exports resolveKeys for testing.
var ResolveKeys = resolveKeys

// NewMatchRow exports newMatchRow for testing.
var NewMatchRow = newMatchRow

// SummonerOptions exports summonerOptions for testing.
type SummonerOptions = summonerOptions

// MatchesOptions exports matchesOptions for testing.
type MatchesOptions = matchesOptions

// ChampionsOptions exports championsOptions for testing.
type ChampionsOptions = championsOptions
