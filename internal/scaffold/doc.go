// Package scaffold generates new BPF tracing applications from embedded
// templates. It powers the root "mkbpf <name>" command: a fresh directory named
// after the application receives a shared header, a kernel-side probe source
// and a user-space loader source, each with the name substituted in.
package scaffold
