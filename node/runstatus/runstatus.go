/*
	Copyright (C) CESS. All rights reserved.
	Copyright (C) Cumulus Encrypted Storage System. All rights reserved.

	SPDX-License-Identifier: Apache-2.0
*/

package runstatus

type Runstatus interface {
	Processst
	Servicest
}

type runstatus struct {
	*ProcessSt
	*ServiceSt
}

var _ Runstatus = (*runstatus)(nil)

func NewRunstatus() Runstatus {
	return &runstatus{
		ProcessSt: NewProcessSt(),
		ServiceSt: NewServiceSt(),
	}
}
