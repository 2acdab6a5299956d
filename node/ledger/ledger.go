/*
	Copyright (C) CESS. All rights reserved.
	Copyright (C) Cumulus Encrypted Storage System. All rights reserved.

	SPDX-License-Identifier: Apache-2.0
*/

// Package ledger is the certificate registry client.
package ledger

import (
	"context"

	"github.com/pkg/errors"
)

// ContractAddress is where the certificate contract will be deployed.
const ContractAddress = "0x0000000000000000000000000000000000000000"

// contract methods
const (
	MethodIssue  = "issueCertificate(address,string,string)"
	MethodGet    = "getCertificate(uint256)"
	MethodVerify = "verifyCertificate(uint256)"
	MethodRevoke = "revokeCertificate(uint256)"
)

var ErrUninitialized = errors.New("ledger client not initialized")

// Signer is the connected account transactions are sent from.
type Signer interface {
	Address() string
}

// AddressSigner signs as a fixed account.
type AddressSigner string

func (a AddressSigner) Address() string {
	return string(a)
}

type Certificate struct {
	Issuer       string `json:"issuer"`
	DocumentHash string `json:"ipfsHash"`
	// Metadata is a json document
	Metadata  string `json:"metadata"`
	Timestamp int64  `json:"timestamp"`
}

type Ledger interface {
	Initialize(signer Signer) bool
	IsInitialized() bool
	IssueCertificate(ctx context.Context, studentAddress, documentHash, metadata string) (uint64, error)
	GetCertificate(ctx context.Context, id uint64) (Certificate, error)
	VerifyCertificate(ctx context.Context, id uint64) (bool, error)
	RevokeCertificate(ctx context.Context, id uint64) (bool, error)
}
