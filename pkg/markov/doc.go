/*
Package markov provides a fixed-order, character-level Markov chain model.

A LanguageModel is trained once from a stream of characters (any
io.RuneReader). For every window of WindowLength consecutive characters it
records which characters followed and how often, then turns those counts
into cumulative probabilities. Generate extends a starting text by sampling
one character at a time from the distribution of its trailing window.

Models live in memory only. Corpus readers, including a SQLite-backed corpus
store, are in the corpus package.
*/
package markov
