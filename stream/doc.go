// Package stream implements three composable stream roles — Input,
// Output, Seekable — plus the concrete streams built from them:
// file-backed, in-memory (fixed and auto-growing), memory-mapped, and
// compressing wrappers over gzip/bzip2/zstd/s2/lz4.
//
// Input embeds io.Reader and Output embeds io.Writer so every stream
// interoperates directly with the standard library and the compress
// package's codecs without adapter shims; EnsureRead/EnsureWrite/ReadByte/
// WriteByte/EOF/Flush round out the contract.
package stream
