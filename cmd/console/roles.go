/*
	Copyright (C) CESS. All rights reserved.
	Copyright (C) Cumulus Encrypted Storage System. All rights reserved.

	SPDX-License-Identifier: Apache-2.0
*/

package console

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/ecertify/ecertify/configs"
	"github.com/ecertify/ecertify/node/session"
	"github.com/ecertify/ecertify/pkg/cache"
	"github.com/ecertify/ecertify/pkg/confile"
	out "github.com/ecertify/ecertify/pkg/fout"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

const (
	roles_cmd       = "roles"
	roles_cmd_use   = "roles"
	roles_cmd_short = "List the roles visitors have chosen"
)

var rolesCmd = &cobra.Command{
	Use:                   roles_cmd_use,
	Short:                 roles_cmd_short,
	Run:                   rolesCmdFunc,
	DisableFlagsInUseLine: true,
}

func init() {
	rootCmd.AddCommand(rolesCmd)
}

// rolesCmdFunc reads the role database, which is locked while the server runs
func rolesCmdFunc(cmd *cobra.Command, args []string) {
	cfg, err := workspaceConfig(cmd)
	if err != nil {
		out.Err(fmt.Sprintf("parse config file err: %v", err))
		return
	}
	db, err := cache.NewCache(filepath.Join(cfg.ReadWorkspace(), configs.DbDir), configs.NameSpace)
	if err != nil {
		out.Err(fmt.Sprintf("open role database: %v (is the server running?)", err))
		return
	}
	defer db.Close()

	roles, err := session.ListRoles(db)
	if err != nil {
		out.Err(err.Error())
		return
	}
	if len(roles) == 0 {
		out.Tip("No roles stored")
		return
	}
	fmt.Println(rolesTable(roles))
}

// workspaceConfig resolves the workspace like run does, without prompting
// for settings the command does not use.
func workspaceConfig(cmd *cobra.Command) (*confile.Confile, error) {
	cfg, _, err := loadProfile(cmd)
	if err != nil {
		return nil, err
	}
	if err = applyFlags(cmd, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func rolesTable(roles map[string]session.Role) string {
	visitors := make([]string, 0, len(roles))
	for v := range roles {
		visitors = append(visitors, v)
	}
	sort.Strings(visitors)

	var tableRows = make([]table.Row, 0, len(visitors))
	for _, v := range visitors {
		tableRows = append(tableRows, table.Row{v, roles[v].String()})
	}
	tw := table.NewWriter()
	tw.AppendHeader(table.Row{"visitor", "role"})
	tw.AppendRows(tableRows)
	return tw.Render()
}
