// Package materialize writes shuffle orderings to disk.
//
// Each ordering becomes its own folder below an output root, named after a
// prefix and the ordering's number ("FDO Impro 03"). Inside, every track is
// copied under a name that starts with its play position, so any player that
// sorts by file name plays the ordering ("07 FDO impro - Artist - Title.mp3").
// Numbers are zero-padded to the width of the largest number in the run.
//
// [Writer.Prepare] applies the overwrite policy for an existing folder:
// replace it when forced, skip the ordering otherwise. [Writer.Write] copies
// one ordering and removes the folder again if copying fails half way, so an
// ordering is either fully on disk or not at all.
package materialize
