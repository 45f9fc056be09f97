package enrich

import (
	"github.com/rs/zerolog/log"
	"github.com/siderolabs/go-smbios/smbios"

	"github.com/go-tangra/go-tangra-hwinfo/internal/model"
)

// applyMachine fills machine identity from the SMBIOS tables. The probe
// only reports these fields when it runs privileged, so an unprivileged
// run leaves them empty.
func applyMachine(machine *model.MachineInfo) {
	s, err := smbios.New()
	if err != nil {
		log.Debug().Err(err).Msg("smbios read failed")
		return
	}

	setIfEmpty(&machine.System, s.SystemInformation.Manufacturer)
	setIfEmpty(&machine.Product, s.SystemInformation.ProductName)
	setIfEmpty(&machine.Mobo, s.BaseboardInformation.Manufacturer)
	setIfEmpty(&machine.MoboModel, s.BaseboardInformation.Product)
	setIfEmpty(&machine.MoboVersion, s.BaseboardInformation.Version)
	setIfEmpty(&machine.FirmwareVendor, s.BIOSInformation.Vendor)
	setIfEmpty(&machine.FirmwareVersion, s.BIOSInformation.Version)
	setIfEmpty(&machine.FirmwareDate, s.BIOSInformation.ReleaseDate)
}
