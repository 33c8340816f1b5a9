//go:build !wasm

package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"bonfire_dao/contract"
	"bonfire_dao/sdk"
)

// Local scenario runner. Replays a TOML script of transactions against the
// mock host so contract behavior can be inspected without a chain deployment.

type scenarioStep struct {
	Sender  string `toml:"sender"`
	At      string `toml:"at"`
	Op      string `toml:"op"`
	Payload string `toml:"payload"`
	Expect  string `toml:"expect"`
}

type scenarioFile struct {
	Name  string         `toml:"name"`
	Steps []scenarioStep `toml:"step"`
}

// operations maps wire op names onto the export facade.
var operations = map[string]func(*string) *string{
	"contract_init":    contract.ContractInit,
	"deploy_local":     contract.DeployLocal,
	"drop_credentials": contract.DropCredentials,
	"admin_add":        contract.AddAdministrator,
	"admin_remove":     contract.RemoveAdministrator,
	"user_register":    contract.RegisterUser,
	"user_sponsor":     contract.SponsorUser,
	"user_withdraw":    contract.WithdrawSponsorship,
	"user_transfer":    contract.TransferTokens,
	"proposal_create":  contract.CreateProposal,
	"proposal_vote":    contract.VoteProposal,
	"proposal_close":   contract.CloseProposal,
	"token_mint":       contract.MintTokens,
	"token_burn":       contract.BurnTokens,
	"get_active":       contract.GetActive,
	"get_proposal":     contract.GetProposal,
	"get_balance":      contract.GetBalance,
	"get_pools":        contract.GetPools,
}

func main() {
	scenarioPath := pflag.StringP("scenario", "s", "localnet.toml", "scenario file to replay")
	dumpState := pflag.Bool("dump-state", false, "print the full kv state after the run")
	verbose := pflag.BoolP("verbose", "v", false, "log at debug level")
	pflag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if !*verbose {
		log = log.Level(zerolog.InfoLevel)
	}

	var scenario scenarioFile
	if _, err := toml.DecodeFile(*scenarioPath, &scenario); err != nil {
		log.Fatal().Err(err).Str("path", *scenarioPath).Msg("cannot read scenario")
	}
	if scenario.Name == "" {
		scenario.Name = *scenarioPath
	}
	log.Info().Str("scenario", scenario.Name).Int("steps", len(scenario.Steps)).Msg("replaying")

	host := sdk.Mock()
	host.Reset()
	failed := 0
	for i, step := range scenario.Steps {
		if !runStep(log, host, i, step) {
			failed++
		}
	}

	if *dumpState {
		for k, v := range host.State {
			fmt.Printf("%q = %s\n", k, v)
		}
	}
	if failed > 0 {
		log.Error().Int("failed", failed).Msg("scenario finished with mismatches")
		os.Exit(1)
	}
	log.Info().Msg("scenario finished clean")
}

// runStep executes one transaction and checks the outcome against the
// step's expectation. Returns false on mismatch.
func runStep(log zerolog.Logger, host *sdk.MockHost, i int, step scenarioStep) (ok bool) {
	fn, known := operations[step.Op]
	if !known {
		log.Error().Int("step", i).Str("op", step.Op).Msg("unknown operation")
		return false
	}
	if step.Sender != "" {
		host.Sender = sdk.Address(step.Sender)
	}
	if step.At != "" {
		host.Timestamp = step.At
	}
	host.TxId = "local-tx-" + strconv.Itoa(i)

	sl := log.With().Int("step", i).Str("op", step.Op).Str("sender", host.Sender.String()).Logger()

	defer func() {
		if r := recover(); r != nil {
			he, isHost := r.(sdk.HostError)
			if !isHost {
				panic(r)
			}
			if he.Symbol == step.Expect && !he.Aborted {
				sl.Debug().Str("symbol", he.Symbol).Msg("reverted as expected")
				ok = true
				return
			}
			sl.Error().Str("want", step.Expect).Str("got", he.Symbol).
				Bool("aborted", he.Aborted).Str("msg", he.Message).Msg("unexpected failure")
			ok = false
		}
	}()

	var payload *string
	if step.Payload != "" {
		payload = &step.Payload
	}
	res := fn(payload)
	if step.Expect != "" {
		sl.Error().Str("want", step.Expect).Msg("expected revert but call succeeded")
		return false
	}
	out := ""
	if res != nil {
		out = *res
	}
	sl.Info().Str("result", out).Msg("ok")
	return true
}
