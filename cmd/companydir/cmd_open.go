package main

import "fmt"

type OpenCmd struct {
	Name string `arg:"" help:"Company name or partial match"`
}

func (cmd *OpenCmd) Run(g *Globals) error {
	company, err := findCompany(g.Cat, cmd.Name)
	if err != nil {
		if handleFindError(g.Out, err) {
			return nil
		}
		return err
	}

	if !company.HasWebsite() {
		return fmt.Errorf("%w: %s", ErrNoWebsite, company.Name)
	}

	name, args := resolveBrowser(company.Website)
	g.logger().Debug("opening website", "company", company.Name, "command", name, "url", company.Website)

	runCmd := g.RunCmd
	if runCmd == nil {
		runCmd = defaultRunCmd
	}
	return runCmd(name, args...)
}
