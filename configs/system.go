/*
	Copyright (C) CESS. All rights reserved.
	Copyright (C) Cumulus Encrypted Storage System. All rights reserved.

	SPDX-License-Identifier: Apache-2.0
*/

package configs

const (
	// Name is the name of the program
	Name = "ecertify"
	// Version
	Version = "v0.2.0"
	// Description is the description of the program
	Description = "Certificate issuance and verification gateway"
	// Brand is the product name shown on pages
	Brand = "E-Certify"
	// NameSpace is the cached namespace
	NameSpace = Name
)
