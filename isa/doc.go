// Package isa defines the VM-11 instruction set tables.
//
// The VM-11 has eleven instructions, each identified by a 6-bit opcode, and
// nine named registers with 8-bit codes. Every instruction word carries a
// 2-bit addressing mode that tells whether its operands are registers or
// immediate values.
package isa
