/*
	Copyright (C) CESS. All rights reserved.
	Copyright (C) Cumulus Encrypted Storage System. All rights reserved.

	SPDX-License-Identifier: Apache-2.0
*/

package common

const (
	Header_ContentType     = "Content-Type"
	Header_X_Forwarded_For = "X-Forwarded-For"
	Header_Location        = "Location"

	Form_File      = "file"
	Form_PublicKey = "publicKey"
	Param_ID       = "id"
	Param_Cid      = "cid"
)
