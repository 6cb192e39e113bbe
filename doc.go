/*
Package termline implements a byte-at-a-time command line editor for serial
consoles, sockets and other character-oriented terminals. The engine performs
no I/O of its own: the host feeds it input bytes one at a time through
Session.ProcessByte and supplies a print hook through which all terminal
output is emitted, which makes it equally usable from a blocking read loop, a
PTY, or a UART receive interrupt.

The editor understands a narrow VT100 subset (arrow keys, Home/End,
erase-to-end-of-line), keeps submitted lines in a fixed-size history ring,
splits confirmed lines into quote-aware tokens, and completes words through a
host-supplied candidate callback. Every buffer is sized once at construction;
nothing grows at runtime and overflow is always a rejected operation.
*/
package termline
