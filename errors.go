/*
 * errors.go, part of gomd.
 *
 * Copyright 2026 Raul Mera <rmeraa{at}academicos(dot)uta(dot)cl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package md

import "strings"

// Error is the interface for errors that all packages in this library
// implement. The Decorate method allows adding and retrieving info from the
// error as it is passed up the call stack, without changing its type or
// wrapping it in something else. Each element of the decoration slice should
// be the name of a function in the calling stack, optionally followed by
// extra information as in "FunctionName: extra info". Passing an empty
// string returns the current decoration without adding to it.
type Error interface {
	Error() string
	Decorate(string) []string
}

// CError is the concrete error type of the library. The zero value is not
// useful; build it with a message and, normally, the name of the function
// that created it as the first decoration.
type CError struct {
	msg  string
	deco []string
}

func NewCError(msg string, deco ...string) *CError {
	return &CError{msg: msg, deco: deco}
}

func (e *CError) Error() string {
	if len(e.deco) == 0 {
		return e.msg
	}
	return e.msg + " (" + strings.Join(e.deco, "/") + ")"
}

func (e *CError) Decorate(deco string) []string {
	if deco != "" {
		e.deco = append(e.deco, deco)
	}
	return e.deco
}
