package main

import "github.com/vfg2006/inventory-dashboard-api/cmd/dashboardctl/commands"

func main() {
	commands.Execute()
}
