package config

// Template is written by --init.
const Template = `# termfolio configuration
# Location: ~/.config/termfolio/config.yaml

content:
  # Directory with experience.yaml, projects.yaml, skills.yaml, ...
  # (.yaml, .json and .toml are accepted). Leave empty for the built-in content.
  dir: ""
  # Reload content when files in dir change
  watch: false

ui:
  user: guest
  host: termfolio
  # Simulated command latency; set delay_max to 0 to disable
  delay_min: 200ms
  delay_max: 400ms
  mouse: true
  timestamps: true

theme:
  # one-dark, light, ayu or github-dark
  default: one-dark

preferences:
  # file, sqlite, keyring or memory
  backend: file
  # path: ~/.local/share/termfolio/prefs.yaml

rain:
  fps: 20
  fade: 0.12
  bright: 0.05
  reset: 0.025

resume:
  # file: /path/to/resume.pdf
  name: resume.pdf
  # download_dir: ~/Downloads
  url: https://example.com/resume.pdf
  notify: true
  copy_link: true

log:
  # debug, info, warn or error
  level: info
  # file: ~/.local/share/termfolio/termfolio.log
`
