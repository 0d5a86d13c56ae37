/*
Package corpus supplies the character streams a markov.LanguageModel trains
on: plain files read as UTF-8, and a SQLite-backed store of named documents
that can be streamed back in the order they were added.
*/
package corpus
