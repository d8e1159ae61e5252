package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/tapkey-go/internal/core/domain"
	"github.com/yndnr/tapkey-go/internal/server/config"
)

// Status is the result of tapkey status.
type Status struct {
	Profile   string `json:"profile" yaml:"profile"`
	Socket    string `json:"socket" yaml:"socket"`
	Reachable bool   `json:"reachable" yaml:"reachable"`
	Error     string `json:"error,omitempty" yaml:"error,omitempty" table:"wide"`
}

// StatusCommand probes the daemon socket without sending a command.
func StatusCommand() *cli.Command {
	return &cli.Command{
		Name:   "status",
		Usage:  "check whether tapkeyd is reachable",
		Action: status,
	}
}

func status(c *cli.Context) error {
	g, err := ParseGlobalFlags(c)
	if err != nil {
		return err
	}

	st := Status{Profile: g.Profile.String(), Socket: g.SocketPath()}
	probeErr := g.Sender().Probe(c.Context)
	if probeErr == nil {
		st.Reachable = true
	} else {
		st.Error = probeErr.Error()
	}

	if err := g.Print(c, st); err != nil {
		return err
	}
	return probeErr
}

// ProfileInfo describes one profile for tapkey profiles.
type ProfileInfo struct {
	Name    string   `json:"name" yaml:"name"`
	Socket  string   `json:"socket" yaml:"socket"`
	Actions []string `json:"actions" yaml:"actions"`
	Device  string   `json:"device" yaml:"device"`
	Vendor  string   `json:"vendor" yaml:"vendor" table:"wide"`
	Product string   `json:"product" yaml:"product" table:"wide"`
	Frame   int      `json:"frame_size,omitempty" yaml:"frame_size,omitempty" table:"wide"`
}

var allKinds = []domain.ActionKind{
	domain.ActionTypeChar,
	domain.ActionBackspace,
	domain.ActionPaste,
	domain.ActionPressModifier,
}

// ProfilesCommand lists the known profiles and their socket paths.
func ProfilesCommand() *cli.Command {
	return &cli.Command{
		Name:   "profiles",
		Usage:  "list daemon profiles",
		Action: listProfiles,
	}
}

func listProfiles(c *cli.Context) error {
	g, err := ParseGlobalFlags(c)
	if err != nil {
		return err
	}

	var infos []ProfileInfo
	for _, p := range domain.Profiles() {
		dev := p.Device()
		info := ProfileInfo{
			Name:    p.String(),
			Socket:  config.ResolveSocketPath(p, g.RuntimeDir),
			Device:  dev.Name,
			Vendor:  fmt.Sprintf("%#04x", dev.Vendor),
			Product: fmt.Sprintf("%#04x", dev.Product),
			Frame:   p.FrameSize(),
		}
		for _, k := range allKinds {
			if p.Supports(k) {
				info.Actions = append(info.Actions, k.String())
			}
		}
		infos = append(infos, info)
	}
	return g.Print(c, infos)
}
